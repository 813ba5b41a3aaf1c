package app

import "github.com/saradorri/safecasino/internal/infrastructure/lock"

func (a *application) InitLockManager() *lock.KeyedLockManager {
	return lock.NewKeyedLockManager()
}
