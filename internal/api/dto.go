package api

// Wire representations of the server's resources. The server speaks
// PascalCase field names; this package is the only place that convention
// appears.

// ArticleDTO is an article as returned by the server, with the author and
// status expanded inline.
type ArticleDTO struct {
	ArticleID int       `json:"ArticleId"`
	Author    AuthorDTO `json:"Author"`
	Title     string    `json:"Title"`
	Body      string    `json:"Body"`
	Image     *string   `json:"Image"`
	Status    StatusDTO `json:"Status"`
	Tags      []TagDTO  `json:"Tags"`
	CreatedAt string    `json:"CreatedAt"`
	UpdatedAt *string   `json:"UpdatedAt"`
}

// ArticleCreateDTO is the JSON body for article creation. TagIDs and
// Image are omitted entirely when the caller did not set them.
type ArticleCreateDTO struct {
	AuthorID int     `json:"AuthorId"`
	Title    string  `json:"Title"`
	Body     string  `json:"Body"`
	StatusID int     `json:"StatusId"`
	TagIDs   []int   `json:"TagIds,omitempty"`
	Image    *string `json:"Image,omitempty"`
}

// ArticleUpdateDTO is the JSON body for article updates. Every field is
// optional; nil fields are not transmitted, leaving the server value
// unchanged.
type ArticleUpdateDTO struct {
	Title    *string `json:"Title,omitempty"`
	Body     *string `json:"Body,omitempty"`
	StatusID *int    `json:"StatusId,omitempty"`
	TagIDs   []int   `json:"TagIds,omitempty"`
	Image    *string `json:"Image,omitempty"`
}

// TagDTO is a tag on the wire.
type TagDTO struct {
	TagID int    `json:"TagId"`
	Name  string `json:"Name"`
}

// TagCreateDTO is the body for tag creation.
type TagCreateDTO struct {
	Name string `json:"Name"`
}

// StatusDTO is an article status lookup row.
type StatusDTO struct {
	StatusID int    `json:"StatusId"`
	Name     string `json:"Name"`
}

// GenderDTO is a gender lookup row.
type GenderDTO struct {
	GenderID int    `json:"GenderId"`
	Name     string `json:"Name"`
}

// AuthorDTO is the read-only user projection embedded in articles and
// returned by the authors listing.
type AuthorDTO struct {
	UserID     int     `json:"UserId"`
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	MiddleName *string `json:"MiddleName"`
	BirthDate  string  `json:"BirthDate"`
	GenderID   int     `json:"GenderId"`
	Email      string  `json:"Email"`
	Login      string  `json:"Login"`
	CreatedAt  string  `json:"CreatedAt"`
}

// UserDTO is the authenticated self-profile.
type UserDTO struct {
	UserID     int     `json:"UserId"`
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	MiddleName *string `json:"MiddleName"`
	BirthDate  string  `json:"BirthDate"`
	GenderID   int     `json:"GenderId"`
	Email      string  `json:"Email"`
	Login      string  `json:"Login"`
	Photo      *string `json:"Photo"`
	CreatedAt  string  `json:"CreatedAt"`
}

// RegisterRequest is the JSON body for user registration.
type RegisterRequest struct {
	FirstName  string  `json:"FirstName"`
	LastName   string  `json:"LastName"`
	MiddleName *string `json:"MiddleName"`
	BirthDate  string  `json:"BirthDate"`
	GenderID   int     `json:"GenderId"`
	Email      string  `json:"Email"`
	Login      string  `json:"Login"`
	Password   string  `json:"Password"`
}

// LoginRequest is the JSON body for authentication.
type LoginRequest struct {
	Login    string `json:"Login"`
	Password string `json:"Password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
