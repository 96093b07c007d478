package request

// CreateUserRequest keeps the raw JSON values so type checks happen in the
// validation rules, in order, instead of failing the whole decode.
type CreateUserRequest struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Email    any `json:"email"`
	Password any `json:"password"`
}
