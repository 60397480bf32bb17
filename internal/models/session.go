package models

// Session links an opaque bearer token to the user that logged in.
type Session struct {
	ID     int    `json:"_id"`
	UserID int    `json:"idUsuario"`
	Token  string `json:"token"`
}
