package models

import (
	"postboard/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"` // bcrypt hash, never serialized
	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
}

func UserCreate(username, email, plainTextPassword string) (u User, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Username = username
	u.Email = email
	u.Password = string(hash)
	return u, db.Instance.Create(&u).Error
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false
	}
	return u, true
}

// UserGetOrCreateByEmail finds the account for a federated (Google) identity,
// creating one on first sign-in. Federated accounts have no usable password.
func UserGetOrCreateByEmail(email, username, firstName, lastName string) (u User, err error) {
	result := db.Instance.First(&u, "email = ?", email)
	if result.Error == nil {
		return u, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return User{}, result.Error
	}
	u = User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	return u, db.Instance.Create(&u).Error
}
