package models

// User represents one record from the users collection
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Company  Company `json:"company"`
}

// Company is the nested company object on a user record
type Company struct {
	Name string `json:"name"`
}
