// Package service реализует бизнес-логику системы бронирования клуба.
package service

import (
	"errors"

	"github.com/mmeshcher/clubbooking-system/internal/model"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	SaveUser(u model.User)
	GetUserByName(username string) (model.User, error)
	AddFacility(f *model.Facility)
	Facilities() []*model.Facility
	FindFacility(id int) (*model.Facility, error)
}

// ErrNotLoggedIn возвращается при попытке бронирования без входа в систему.
var (
	ErrNotLoggedIn = errors.New("login required")
	// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSlotUnavailable возвращается, если запрошенный слот занят или неизвестен.
	ErrSlotUnavailable = errors.New("slot not available")
	// ErrBookFailed возвращается, если слот не удалось занять после проверки доступности.
	ErrBookFailed = errors.New("failed to book slot")
)

// Receipt описывает итог успешного бронирования.
type Receipt struct {
	FacilityName string
	Slot         string
	Amount       float64
	PayTo        string
}

// Service содержит бизнес-логику бронирования: каталог и реестр
// пользователей доступны только через него, текущая сессия хранится
// в поле сервиса. Сервис рассчитан на один поток управления.
type Service struct {
	repo        Repository
	upiAddress  string
	currentUser string
}

// NewService создаёт новый сервис с указанным хранилищем и адресом UPI
// для платёжной инструкции в чеке.
func NewService(repo Repository, upiAddress string) *Service {
	return &Service{
		repo:       repo,
		upiAddress: upiAddress,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// Register регистрирует пользователя. Повторная регистрация имени
// перезаписывает пароль; значения не проверяются.
func (s *Service) Register(username, password string) {
	s.repo.SaveUser(model.User{Username: username, Password: password})
}

// Authenticate проверяет логин и пароль. Это предикат с побочным
// эффектом: при точном совпадении пароля сессия переключается на
// указанного пользователя, при любой неудаче остаётся прежней.
// Перехода в анонимное состояние не существует.
func (s *Service) Authenticate(username, password string) error {
	u, err := s.repo.GetUserByName(username)
	if err != nil {
		return ErrInvalidCredentials
	}
	if u.Password != password {
		return ErrInvalidCredentials
	}

	s.currentUser = username
	return nil
}

// CurrentUser возвращает имя пользователя текущей сессии или пустую
// строку для анонимного состояния.
func (s *Service) CurrentUser() string {
	return s.currentUser
}

// AddFacility добавляет объект в каталог.
func (s *Service) AddFacility(f *model.Facility) {
	s.repo.AddFacility(f)
}

// Facilities возвращает каталог в порядке добавления. Авторизация
// для просмотра не требуется.
func (s *Service) Facilities() []*model.Facility {
	return s.repo.Facilities()
}

// Book бронирует слот объекта. Проверка входа выполняется до поиска
// объекта; затем идёт поиск по каталогу, одна проверка доступности
// и попытка занять слот. Неудача ничего не меняет в состоянии.
func (s *Service) Book(facilityID int, slot string) (*Receipt, error) {
	if s.currentUser == "" {
		return nil, ErrNotLoggedIn
	}

	f, err := s.repo.FindFacility(facilityID)
	if err != nil {
		return nil, err
	}

	if !f.SlotAvailable(slot) {
		return nil, ErrSlotUnavailable
	}
	if !f.Book(slot) {
		return nil, ErrBookFailed
	}

	return &Receipt{
		FacilityName: f.Name,
		Slot:         slot,
		Amount:       f.PricePerHour,
		PayTo:        s.upiAddress,
	}, nil
}

// Release освобождает слот объекта безусловно. Вход в систему не
// требуется, в отличие от бронирования.
func (s *Service) Release(facilityID int, slot string) error {
	f, err := s.repo.FindFacility(facilityID)
	if err != nil {
		return err
	}

	f.Release(slot)
	return nil
}
