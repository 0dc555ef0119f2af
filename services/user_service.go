package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"car-rental-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UserUpdate carries the fields an admin edit may change; nil means unchanged.
type UserUpdate struct {
	Username *string
	Password *string
	Role     *string
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *UserService) usernameTaken(tx *gorm.DB, username string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.User{}).Where("username = ?", username)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Register creates a user with the default role.
func (s *UserService) Register(username, password string) (*models.User, error) {
	return s.Create(username, password, models.RoleUser)
}

func (s *UserService) Create(username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	taken, err := s.usernameTaken(s.DB, username, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Username: username, Password: hash, Role: role}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login checks the credentials and returns the stored user.
func (s *UserService) Login(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

func (s *UserService) Update(id uint, upd UserUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if upd.Role != nil {
		if !models.ValidRole(*upd.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *upd.Role)
		}
		fields["role"] = *upd.Role
	}
	if upd.Password != nil {
		if *upd.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", ErrValidation)
		}
		hash, err := hashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	var username string
	if upd.Username != nil {
		username = strings.TrimSpace(*upd.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", ErrValidation)
		}
		fields["username"] = username
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, id)
			}
			return err
		}
		if username != "" {
			taken, err := s.usernameTaken(tx, username, id)
			if err != nil {
				return err
			}
			if taken {
				return fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
			}
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrDuplicateUsername):
			return nil, err
		case isDuplicateKeyError(err):
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(id)
}

// Delete removes a user and their bookings. Unknown ids are a no-op.
func (s *UserService) Delete(id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// EnsureAdmin seeds an admin account when none exists yet.
func (s *UserService) EnsureAdmin(username, password string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := s.Create(username, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	log.Printf("default admin %q seeded", username)
	return nil
}
