package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

func (r LoginRequest) Values() map[string]string {
	return map[string]string{
		"email":    r.Email,
		"password": r.Password,
	}
}

func (r RegisterRequest) Values() map[string]string {
	return map[string]string{
		"name":     r.Name,
		"email":    r.Email,
		"password": r.Password,
	}
}
