package user

import (
	domain "webcars-api/internal/domain/user"
	"webcars-api/internal/infrastructure/docstore"
)

func toFields(u domain.User) map[string]any {
	fields := map[string]any{
		"email":   u.Email,
		"name":    u.Name,
		"created": u.CreatedAt,
		"updated": u.UpdatedAt,
	}
	if u.PasswordHash != nil {
		fields["password_hash"] = *u.PasswordHash
	}

	return fields
}

func fromDocument(id string, fields map[string]any) (*domain.User, error) {
	u := &domain.User{ID: id}

	var ok bool
	if u.Email, ok = docstore.String(fields, "email"); !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "email", Want: "string"}
	}
	if u.Name, ok = docstore.String(fields, "name"); !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "name", Want: "string"}
	}
	if u.CreatedAt, ok = docstore.Time(fields, "created"); !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "created", Want: "timestamp"}
	}
	if u.UpdatedAt, ok = docstore.Time(fields, "updated"); !ok {
		return nil, &docstore.DecodeError{Collection: Collection, ID: id, Field: "updated", Want: "timestamp"}
	}

	// Optional: identities provisioned by external tooling may lack a
	// password hash.
	if hash, ok := docstore.String(fields, "password_hash"); ok {
		u.PasswordHash = &hash
	}

	return u, nil
}
