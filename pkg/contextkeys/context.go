package contextkeys

// Custom type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the pool or an open transaction) is stored.
const DBContextKey = contextKey("db")
