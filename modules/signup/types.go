package signup

// DocumentType is the content-store type of a sign-up record.
const DocumentType = "signupform"

// Request is the sign-up body. Email stays untyped so a missing field and a
// non-string value can be told apart from a string after decoding.
type Request struct {
	Email any `json:"email"`
}

// Response is returned on success with the normalized address.
type Response struct {
	Email string `json:"email"`
}

// Document is the record stored for every successful sign-up.
type Document struct {
	Type string       `json:"_type" bson:"_type"`
	Data DocumentData `json:"data" bson:"data"`
}

type DocumentData struct {
	Email string `json:"email" bson:"email"`
}

// NewDocument builds the signupform document for email.
func NewDocument(email string) Document {
	return Document{
		Type: DocumentType,
		Data: DocumentData{Email: email},
	}
}
