package domain

import "time"

type AccountType string

const (
	AccountTypeAdmin          AccountType = "ADMIN"
	AccountTypeEmployee       AccountType = "EMPLOYEE"
	AccountTypeMember         AccountType = "MEMBER"
	AccountTypeMemberEmployee AccountType = "MEMBER_EMPLOYEE"
)

// IsMember reports whether the account belongs to the restricted tier whose
// access is narrowed to resources owned by the same person.
func (t AccountType) IsMember() bool {
	return t == AccountTypeMember
}

// IsAdmin reports whether the account holds the top administrative tier.
func (t AccountType) IsAdmin() bool {
	return t == AccountTypeAdmin
}

type Account struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	CreationDate time.Time   `json:"creationDate"`
	UserID       int64       `json:"userId"`
	AccountType  AccountType `json:"accountType"`
}
