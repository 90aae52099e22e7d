package postgres

import (
	"errors"

	userDatamodel "github.com/ems-project/ems-backend/internal/core/datamodel/user"
	"github.com/ems-project/ems-backend/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.Repository using GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) AllUsers() ([]*user.User, error) {
	var models []*userDatamodel.User
	if err := r.db.Order("eid").Find(&models).Error; err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(models), nil
}

func (r *UserRepository) UserByEid(eid string) (*user.User, error) {
	var m userDatamodel.User
	err := r.db.Where("eid = ?", eid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&m), nil
}

func (r *UserRepository) UserByEmail(email string) (*user.User, error) {
	var m userDatamodel.User
	err := r.db.Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&m), nil
}

func (r *UserRepository) CreateUser(u *user.User) error {
	err := r.db.Create(user.ToDataModel(u)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *UserRepository) UpdateUser(u *user.User) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("eid = ?", u.Eid).
		Updates(map[string]interface{}{
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"urid":          u.Urid,
		}).Error
}

func (r *UserRepository) DeleteUser(eid string) error {
	return r.db.Where("eid = ?", eid).Delete(&userDatamodel.User{}).Error
}

func (r *UserRepository) AllUserTypes() ([]*user.UserType, error) {
	var models []*userDatamodel.UserType
	if err := r.db.Order("urid").Find(&models).Error; err != nil {
		return nil, err
	}
	types := make([]*user.UserType, len(models))
	for i, m := range models {
		types[i] = &user.UserType{Urid: m.Urid, UserType: m.UserType}
	}
	return types, nil
}
