package session

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	UserName string `json:"userName" minLength:"1" doc:"Usuario"`
	Password string `json:"password" minLength:"1" doc:"Contraseña"`
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type tokenInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

type checkOutput struct {
	Body checkResponse
}

type checkResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}
