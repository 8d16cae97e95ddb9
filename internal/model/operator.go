package model

type Credentials struct {
	Login    string
	Password string
}

type AuthData struct {
	AccessToken string
}
