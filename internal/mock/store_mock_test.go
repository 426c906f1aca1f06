package mock

import "github.com/backmeup/credstore/internal/store"

// Compile-time checks that the generated mocks keep implementing the store
// contracts they were generated from.
var (
	_ store.UserRepository       = (*MockUserRepository)(nil)
	_ store.PermissionRepository = (*MockPermissionRepository)(nil)
	_ store.ErrorClassificator   = (*MockErrorClassificator)(nil)
)
