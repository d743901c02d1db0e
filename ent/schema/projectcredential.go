package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectCredential stores an encrypted LLM provider API key for a project.
// The key material is sealed with AES-256-GCM before it reaches the database;
// the nonce is prepended to the ciphertext.
type ProjectCredential struct {
	ent.Schema
}

// Fields of the ProjectCredential.
func (ProjectCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("provider").
			Comment("openai, anthropic, google, sidecar"),
		field.Bytes("ciphertext").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ProjectCredential.
func (ProjectCredential) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "provider").
			Unique(),
	}
}
