package domain

// UserIn is the sign-up payload. It carries the raw password. Username and
// Password are pointers so that only an absent value fails "required".
type UserIn struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name"`
}

// UserOut is the public view of a user. It never carries password material.
type UserOut struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

// UserInDB is what a user would look like once stored.
type UserInDB struct {
	Username       string  `json:"username"`
	HashedPassword string  `json:"hashed_password"`
	Email          string  `json:"email"`
	FullName       *string `json:"full_name"`
}
