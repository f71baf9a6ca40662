package postgres

const (
	InsertDocument = `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3)
	`
	SelectDocumentByID = `
		SELECT fields
		FROM documents
		WHERE collection = $1 AND id = $2
	`
	SelectDocuments = `
		SELECT id, fields
		FROM documents
		WHERE collection = $1
	`
	UpdateDocumentByID = `
		UPDATE documents
		SET fields = fields || $3::jsonb
		WHERE collection = $1 AND id = $2
	`
)
