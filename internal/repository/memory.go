// Package repository содержит реализацию хранилища данных в памяти процесса.
package repository

import (
	"errors"

	"github.com/mmeshcher/clubbooking-system/internal/model"
)

// ErrFacilityNotFound возвращается, если объект с указанным идентификатором не найден.
var (
	ErrFacilityNotFound = errors.New("facility not found")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
)

// MemoryRepository хранит каталог объектов клуба и реестр пользователей
// в памяти процесса. Каталог упорядочен по порядку добавления; хранилище
// не рассчитано на конкурентный доступ.
type MemoryRepository struct {
	facilities []*model.Facility
	users      map[string]model.User
}

// NewMemoryRepository создаёт пустое хранилище.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]model.User),
	}
}

// Close освобождает ресурсы хранилища.
func (r *MemoryRepository) Close() error {
	return nil
}

// SaveUser сохраняет пользователя. Повторная регистрация того же имени
// перезаписывает запись целиком, без ошибки.
func (r *MemoryRepository) SaveUser(u model.User) {
	r.users[u.Username] = u
}

// GetUserByName возвращает пользователя по имени.
func (r *MemoryRepository) GetUserByName(username string) (model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// AddFacility добавляет объект в конец каталога. Уникальность
// идентификаторов не проверяется, дубликат затеняется при поиске.
func (r *MemoryRepository) AddFacility(f *model.Facility) {
	r.facilities = append(r.facilities, f)
}

// Facilities возвращает каталог в порядке добавления.
func (r *MemoryRepository) Facilities() []*model.Facility {
	return r.facilities
}

// FindFacility ищет объект линейным проходом по каталогу и возвращает
// первое совпадение по идентификатору.
func (r *MemoryRepository) FindFacility(id int) (*model.Facility, error) {
	for _, f := range r.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, ErrFacilityNotFound
}
