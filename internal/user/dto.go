package user

import "errors"

// UserDTO never carries the password hash outward. Password is accepted
// on create and update only.
type UserDTO struct {
	Eid      string `json:"eid"`
	Email    string `json:"email"`
	Urid     string `json:"urid"`
	Password string `json:"password,omitempty"`
}

type UserTypeDTO struct {
	Urid     string `json:"urid"`
	UserType string `json:"user_type"`
}

func (dto UserDTO) Validate(requirePassword bool) error {
	if dto.Eid == "" {
		return errors.New("eid is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	if dto.Urid == "" {
		return errors.New("urid is required")
	}
	if requirePassword && dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

func DTOFromUser(u *User) *UserDTO {
	return &UserDTO{
		Eid:   u.Eid,
		Email: u.Email,
		Urid:  u.Urid,
	}
}

func DTOsFromUsers(users []*User) []*UserDTO {
	result := make([]*UserDTO, len(users))
	for i, u := range users {
		result[i] = DTOFromUser(u)
	}
	return result
}

func DTOFromUserType(t *UserType) *UserTypeDTO {
	return &UserTypeDTO{Urid: t.Urid, UserType: t.UserType}
}

func DTOsFromUserTypes(types []*UserType) []*UserTypeDTO {
	result := make([]*UserTypeDTO, len(types))
	for i, t := range types {
		result[i] = DTOFromUserType(t)
	}
	return result
}
