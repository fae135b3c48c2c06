package seeds

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	statusModel "coursedesk_backend/internals/features/contacts/statuses/model"
	authHelper "coursedesk_backend/internals/features/users/auth/helper"
	userModel "coursedesk_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName string               `json:"user_name"`
	Email    string               `json:"email"`
	Password string               `json:"password"`
	IsAdmin  bool                 `json:"is_admin"`
	Roles    []userModel.UserRole `json:"roles"`
}

type Data struct {
	Users    []UserSeed `json:"users"`
	Statuses []string   `json:"statuses"`
}

// RunAllSeeds loads filePath and inserts what is missing. Existing rows are
// never modified, so it is safe to run on every deploy.
func RunAllSeeds(db *gorm.DB, filePath string) error {
	log.Infof("📥 Reading seed file %s", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrap(err, "read seed file")
	}
	var data Data
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return errors.Wrap(err, "decode seed file")
	}
	return Seed(db, data)
}

func Seed(db *gorm.DB, data Data) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedStatuses(tx, data.Statuses); err != nil {
			return err
		}
		return seedUsers(tx, data.Users)
	})
}

// seedStatuses always ensures the built-in statuses exist.
func seedStatuses(db *gorm.DB, extra []string) error {
	system := map[string]bool{}
	for _, s := range statusModel.SystemStatuses {
		system[strings.ToLower(s)] = true
	}

	names := append(append([]string{}, statusModel.SystemStatuses...), extra...)
	inserted := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var n int64
		if err := db.Model(&statusModel.StatusModel{}).
			Where("LOWER(status_name) = ?", strings.ToLower(name)).
			Count(&n).Error; err != nil {
			return errors.Wrap(err, "check status")
		}
		if n > 0 {
			continue
		}
		row := statusModel.StatusModel{StatusName: name, StatusIsSystem: system[strings.ToLower(name)]}
		if err := db.Create(&row).Error; err != nil {
			return errors.Wrapf(err, "insert status %q", name)
		}
		inserted++
	}
	log.Infof("✅ %d status(es) seeded", inserted)
	return nil
}

func seedUsers(db *gorm.DB, users []UserSeed) error {
	inserted := 0
	for _, s := range users {
		email := strings.ToLower(strings.TrimSpace(s.Email))
		userName := strings.TrimSpace(s.UserName)
		if email == "" || userName == "" || s.Password == "" {
			log.Warnf("ℹ️ seed user %q skipped: user_name, email and password are required", userName)
			continue
		}

		var n int64
		if err := db.Model(&userModel.UserModel{}).
			Where("LOWER(email) = ? OR LOWER(user_name) = ?", email, strings.ToLower(userName)).
			Count(&n).Error; err != nil {
			return errors.Wrap(err, "check user")
		}
		if n > 0 {
			log.Infof("ℹ️ user %s already exists, skipped", email)
			continue
		}

		roles, err := userModel.NormalizeRoles(s.Roles)
		if err != nil {
			return errors.Wrapf(err, "roles of %s", email)
		}
		hash, err := authHelper.HashPassword(s.Password)
		if err != nil {
			return errors.Wrap(err, "hash password")
		}
		u := userModel.UserModel{
			UserName: userName,
			Email:    email,
			Password: hash,
			IsAdmin:  s.IsAdmin,
			IsActive: true,
			Roles:    roles,
		}
		if err := db.Create(&u).Error; err != nil {
			return errors.Wrapf(err, "insert user %s", email)
		}
		inserted++
	}
	log.Infof("✅ %d user(s) seeded", inserted)
	return nil
}
