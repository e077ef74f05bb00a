package cashbook

// UserID identifies a user of the external membership system.
type UserID int

// Lock is either unlocked or locked by a user.
type Lock struct {
	locked bool
	holder UserID
}

func Unlocked() Lock {
	return Lock{}
}

func LockedBy(user UserID) Lock {
	return Lock{locked: true, holder: user}
}

func (l Lock) IsLocked() bool {
	return l.locked
}

// Holder returns the user who locked the chit.
func (l Lock) Holder() (UserID, bool) {
	return l.holder, l.locked
}
