// Package model содержит доменные сущности системы бронирования клуба.
package model

import (
	"sort"

	"github.com/mmeshcher/clubbooking-system/internal/validation"
)

// FacilityKind описывает разновидность объекта клуба.
type FacilityKind string

const (
	FacilityKindStandard FacilityKind = "STANDARD"
	FacilityKindPremium  FacilityKind = "PREMIUM"
)

// DefaultSlots — канонический набор часовых интервалов, назначаемый
// объекту при создании, если свой набор не задан.
var DefaultSlots = []string{
	"08:00-09:00",
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"16:00-17:00",
	"17:00-18:00",
	"18:00-19:00",
}

// User представляет зарегистрированного пользователя клуба.
type User struct {
	Username string
	Password string
}

// Facility описывает объект клуба с почасовой арендой и фиксированным
// набором слотов. Набор меток слотов после создания не меняется,
// меняются только флаги доступности.
type Facility struct {
	ID           int
	Name         string
	PricePerHour float64
	Kind         FacilityKind
	Feature      string

	slots map[string]bool
}

// NewFacility создаёт обычный объект клуба. Если метки слотов не переданы,
// используется DefaultSlots; метки с неверным форматом отбрасываются.
func NewFacility(id int, name string, pricePerHour float64, slots ...string) *Facility {
	return &Facility{
		ID:           id,
		Name:         name,
		PricePerHour: pricePerHour,
		Kind:         FacilityKindStandard,
		slots:        buildSlots(slots),
	}
}

// NewPremiumFacility создаёт премиальный объект с дополнительным описанием.
// Логика доступности и бронирования не отличается от обычного объекта.
func NewPremiumFacility(id int, name string, pricePerHour float64, feature string, slots ...string) *Facility {
	f := NewFacility(id, name, pricePerHour, slots...)
	f.Kind = FacilityKindPremium
	f.Feature = feature
	return f
}

func buildSlots(labels []string) map[string]bool {
	if len(labels) == 0 {
		labels = DefaultSlots
	}

	slots := make(map[string]bool, len(labels))
	for _, label := range labels {
		if validation.IsValidSlotLabel(label) {
			slots[label] = true
		}
	}
	return slots
}

// SlotAvailable сообщает, свободен ли слот. Неизвестная метка считается
// недоступной, ошибкой это не является.
func (f *Facility) SlotAvailable(label string) bool {
	return f.slots[label]
}

// Book занимает слот и возвращает true при успехе. Если слот занят или
// метка неизвестна, возвращает false, не меняя состояния.
func (f *Facility) Book(label string) bool {
	if !f.SlotAvailable(label) {
		return false
	}
	f.slots[label] = false
	return true
}

// Release освобождает известный слот безусловно: повторное освобождение
// свободного слота ничего не меняет. Неизвестная метка молча игнорируется.
func (f *Facility) Release(label string) {
	if _, ok := f.slots[label]; ok {
		f.slots[label] = true
	}
}

// AvailableSlots возвращает метки свободных слотов в лексикографическом
// порядке по возрастанию.
func (f *Facility) AvailableSlots() []string {
	available := make([]string, 0, len(f.slots))
	for label, free := range f.slots {
		if free {
			available = append(available, label)
		}
	}
	sort.Strings(available)
	return available
}
