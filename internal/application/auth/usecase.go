package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
	"github.com/iamungmonita/plants-box-api/internal/domain/sales"
	"github.com/iamungmonita/plants-box-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase sign-in, staff account management and the daily first-login flag.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	loginRepo repository.LoginLogRepository
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase builds the usecase.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, loginRepo repository.LoginLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		loginRepo: loginRepo,
		jwtCfg:    jwtCfg,
		now:       time.Now,
	}
}

// SignIn verifies credentials against active accounts, issues a JWT and
// records the login. FirstLoginToday is true when this is the first sign-in
// since local midnight.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest) (*dto.SignInResponse, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email", domain.ErrMissingParam)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password", domain.ErrMissingParam)
	}
	user, err := uc.userRepo.GetActiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user", domain.ErrInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid password", domain.ErrInvalidCredential)
	}

	now := uc.now()
	logins, err := uc.loginRepo.CountSince(sales.DayStart(now))
	if err != nil {
		return nil, err
	}
	if err := uc.loginRepo.Create(&entity.LoginLog{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.FirstName, user.Codes, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SignInResponse{Token: token, FirstLoginToday: logins == 0}, nil
}

// SignUp creates a staff account. The referenced role must exist; a duplicate
// email surfaces as a duplicated-param failure.
func (uc *AuthUseCase) SignUp(principalID string, in dto.SignUpRequest) (*dto.UserResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Role == "" || in.Email == "" ||
		in.Password == "" || in.PhoneNumber == "" || len(in.Codes) == 0 {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrBadRequest)
	}
	role, err := uc.roleRepo.GetByID(in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: role does not exist", domain.ErrNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		RoleID:       role.ID,
		Codes:        in.Codes,
		IsActive:     in.IsActive,
		Pictures:     in.Pictures,
		CreatedBy:    principalID,
		UpdatedBy:    principalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: email", domain.ErrDuplicate)
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Profile returns the principal's own account.
func (uc *AuthUseCase) Profile(principalID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(principalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user does not exist", domain.ErrNotFound)
	}
	return toUserResponse(user), nil
}

// Users lists all staff accounts.
func (uc *AuthUseCase) Users() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UserByID returns one staff account.
func (uc *AuthUseCase) UserByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user does not exist", domain.ErrNotFound)
	}
	return toUserResponse(user), nil
}

// UpdateUser applies a partial account update attributed to the principal.
func (uc *AuthUseCase) UpdateUser(principalID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user does not exist", domain.ErrNotFound)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		role, err := uc.roleRepo.GetByID(*in.Role)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, fmt.Errorf("%w: role does not exist", domain.ErrNotFound)
		}
		user.RoleID = role.ID
	}
	if in.Codes != nil {
		user.Codes = *in.Codes
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Pictures != nil {
		user.Pictures = *in.Pictures
	}
	user.UpdatedBy = principalID
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(user); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: email", domain.ErrDuplicate)
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.RoleID,
		Codes:       u.Codes,
		IsActive:    u.IsActive,
		Pictures:    u.Pictures,
		CreatedBy:   u.CreatedBy,
		UpdatedBy:   u.UpdatedBy,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
