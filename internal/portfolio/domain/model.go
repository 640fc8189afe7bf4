package domain

import "time"

// Project is a single portfolio entry with its case-study copy.
// It is storage-agnostic and shared across repository and HTTP layers.
type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Challenge    string    `json:"challenge"`
	Solution     string    `json:"solution"`
	Impact       string    `json:"impact"`
	Image        string    `json:"image"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	CaseStudyURL string    `json:"caseStudyUrl,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// InsertProject carries the fields a caller may set when creating a project.
type InsertProject struct {
	Title        string
	Description  string
	Challenge    string
	Solution     string
	Impact       string
	Image        string
	Featured     bool
	Order        int
	CaseStudyURL string
}

// ProjectPatch is a partial update; nil fields are left unchanged.
type ProjectPatch struct {
	Title        *string
	Description  *string
	Challenge    *string
	Solution     *string
	Impact       *string
	Image        *string
	Featured     *bool
	Order        *int
	CaseStudyURL *string
}

// Message is a contact-form submission. Immutable once stored.
type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertMessage carries the fields of a new contact message.
type InsertMessage struct {
	Name    string
	Email   string
	Message string
}

// Admin is a backoffice account. Password holds the bcrypt hash and is
// never serialized.
type Admin struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
