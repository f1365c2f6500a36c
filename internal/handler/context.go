package handler

type ContextKey string

var (
	EmailCtxKey ContextKey = "email"
	StoreCtx    ContextKey = "store"
	UserCtx     ContextKey = "user"
	CatalogCtx  ContextKey = "catalog"
	RoleCtx     ContextKey = "role"
)
