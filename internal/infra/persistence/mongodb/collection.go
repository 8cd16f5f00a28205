package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// collection is the shared base of the repositories. A non-nil session binds
// every call to an open multi-document transaction.
type collection struct {
	coll    *mongo.Collection
	session mongo.Session
}

func newCollection(db *mongo.Database, name string, session mongo.Session) collection {
	return collection{coll: db.Collection(name), session: session}
}

func (c collection) bind(ctx context.Context) context.Context {
	if c.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, c.session)
}

// now matches the millisecond precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stampCreate(createdAt, updatedAt *time.Time) {
	ts := now()
	if createdAt.IsZero() {
		*createdAt = ts
	}
	if updatedAt.IsZero() {
		*updatedAt = ts
	}
}
