package models

import "gorm.io/datatypes"

// Customer 顾客档案，与用户一一对应
type Customer struct {
	ID         uint            `gorm:"primarykey" json:"id"`                                   // 主键
	UserID     uint            `gorm:"uniqueIndex;not null" json:"user_id"`                    // 用户ID
	Phone      string          `gorm:"type:varchar(255)" json:"phone"`                         // 电话
	BirthDate  *datatypes.Date `gorm:"type:date" json:"birth_date"`                            // 生日
	Membership string          `gorm:"type:varchar(1);not null;default:'B'" json:"membership"` // 会员等级

	User *User `gorm:"foreignKey:UserID" json:"-"` // 关联用户
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
