package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// UserUseCase administración de usuarios.
// Un admin no puede crear, modificar ni eliminar superadmins; nadie puede eliminarse a sí mismo.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// Create crea un usuario activo con la contraseña hasheada (bcrypt).
func (uc *UserUseCase) Create(ctx context.Context, actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.NewValidationError("rol", "rol inválido")
	}
	if in.Role == entity.RoleSuperAdmin && actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return EntityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return EntityToUserResponse(u), nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *EntityToUserResponse(u))
	}
	return out, nil
}

// Update aplica los campos presentes. Un usuario no puede desactivarse ni cambiarse el rol a sí mismo.
func (uc *UserUseCase) Update(ctx context.Context, actorID, actorRole, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Role == entity.RoleSuperAdmin && actorRole != entity.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if actorID == id && (in.Role != nil || (in.Active != nil && !*in.Active)) {
		return nil, domain.NewValidationError("rol", "no puede cambiar su propio rol ni desactivarse")
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.NewValidationError("rol", "rol inválido")
		}
		if *in.Role == entity.RoleSuperAdmin && actorRole != entity.RoleSuperAdmin {
			return nil, domain.ErrForbidden
		}
		u.Role = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return EntityToUserResponse(u), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, actorRole, id string) error {
	if actorID == id {
		return domain.NewValidationError("id", "no puede eliminarse a sí mismo")
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.Role == entity.RoleSuperAdmin && actorRole != entity.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

// EnsureSuperAdmin crea el superadmin inicial si el email no existe. Devuelve true si lo creó.
func (uc *UserUseCase) EnsureSuperAdmin(ctx context.Context, email, password, name string) (bool, error) {
	existing, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if name == "" {
		name = "Administrador"
	}
	_, err = uc.Create(ctx, entity.RoleSuperAdmin, dto.CreateUserRequest{
		Email: email, Password: password, Name: name, Role: entity.RoleSuperAdmin,
	})
	return err == nil, err
}

// EntityToUserResponse mapea el usuario sin el hash.
func EntityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
