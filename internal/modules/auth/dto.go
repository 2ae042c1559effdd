package auth

type SigninRequest struct {
	Name     string `json:"name" binding:"required,min=5,max=50"`
	Password string `json:"password" binding:"required,min=5,max=50"`
}

// Tokens is a transient pair; only the refresh half is ever persisted.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}
