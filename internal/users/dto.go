package users

// timestampLayout renders timestamps as ISO-8601 local time without a
// zone suffix, the format existing consumers of this API already parse.
const timestampLayout = "2006-01-02T15:04:05.999999"

// UserForm carries the mutable fields for create and update. Age and
// Phone are optional and intentionally unconstrained beyond their type.
type UserForm struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,contains=@"`
	Age   *int    `json:"age"`
	Phone *string `json:"phone"`
}

// UserResponse is the JSON shape of a single record. Age and Phone
// serialize as null when absent.
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       *int    `json:"age"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type listResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

type userEnvelope struct {
	User UserResponse `json:"user"`
}

type mutationResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type deleteResponse struct {
	Message     string       `json:"message"`
	DeletedUser UserResponse `json:"deleted_user"`
}

func toResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt.Format(timestampLayout),
		UpdatedAt: u.UpdatedAt.Format(timestampLayout),
	}
}

func toResponses(records []User) []UserResponse {
	out := make([]UserResponse, len(records))
	for i, u := range records {
		out[i] = toResponse(u)
	}
	return out
}
