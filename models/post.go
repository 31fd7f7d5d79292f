package models

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Username  string `gorm:"type:varchar(150)"` // author's username at creation time
	Title     string `gorm:"type:varchar(200)"`
	Content   string `gorm:"type:text"`
}

// OwnedBy is the mutation/deletion check. Posts are compared by account id
// rather than the stored username so that renames cannot orphan ownership.
func (p *Post) OwnedBy(u *User) bool {
	return p.UserID == u.ID
}
