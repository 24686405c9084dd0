// Package shell реализует интерактивное текстовое меню системы бронирования.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/mmeshcher/clubbooking-system/internal/model"
	"github.com/mmeshcher/clubbooking-system/internal/repository"
	"github.com/mmeshcher/clubbooking-system/internal/service"
)

// Service определяет контракт бизнес-логики, используемой меню.
type Service interface {
	Authenticate(username, password string) error
	Facilities() []*model.Facility
	Book(facilityID int, slot string) (*service.Receipt, error)
	Release(facilityID int, slot string) error
}

// Shell читает команды меню из входного потока токенами, разделёнными
// пробельными символами, и печатает результаты в выходной поток.
type Shell struct {
	svc     Service
	scanner *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

// New создаёт новый экземпляр меню поверх указанных потоков ввода-вывода.
func New(svc Service, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Shell{
		svc:     svc,
		scanner: scanner,
		out:     out,
		logger:  logger,
	}
}

// Run выполняет цикл меню до выбора пункта выхода или конца входного потока.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, "\n--- Club Booking Menu ---\n")
		fmt.Fprint(s.out, "1. Login\n2. Show Facilities\n3. Book a Facility\n4. Release a Facility\n5. Exit\n")
		fmt.Fprint(s.out, "Enter your choice: ")

		token, ok := s.next()
		if !ok {
			return s.scanErr()
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			// нечисловой ввод обрабатывается как неизвестный пункт меню
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		switch choice {
		case 1:
			ok = s.login()
		case 2:
			s.showFacilities()
		case 3:
			ok = s.book()
		case 4:
			ok = s.release()
		case 5:
			fmt.Fprintln(s.out, "Thank you for using the Club Booking System.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}

		if !ok {
			return s.scanErr()
		}
	}
}

func (s *Shell) login() bool {
	fmt.Fprint(s.out, "Username: ")
	username, ok := s.next()
	if !ok {
		return false
	}

	fmt.Fprint(s.out, "Password: ")
	password, ok := s.next()
	if !ok {
		return false
	}

	if err := s.svc.Authenticate(username, password); err != nil {
		fmt.Fprintln(s.out, "Invalid credentials.")
		s.logger.Debug("login rejected", zap.String("username", username))
		return true
	}

	fmt.Fprintf(s.out, "Login successful! Welcome, %s\n", username)
	s.logger.Info("user logged in", zap.String("username", username))
	return true
}

func (s *Shell) showFacilities() {
	fmt.Fprint(s.out, "\nAvailable Facilities and Time Slots:\n")
	for _, f := range s.svc.Facilities() {
		s.displayFacility(f)
	}
}

func (s *Shell) displayFacility(f *model.Facility) {
	fmt.Fprintf(s.out, "ID: %d, Facility: %s, Rate/hour: Rs.%s\n", f.ID, f.Name, formatPrice(f.PricePerHour))

	fmt.Fprint(s.out, "Available Slots: ")
	for _, slot := range f.AvailableSlots() {
		fmt.Fprint(s.out, slot+" ")
	}
	fmt.Fprintln(s.out)

	if f.Kind == model.FacilityKindPremium {
		fmt.Fprintf(s.out, "  -> Type: Premium | Feature: %s\n", f.Feature)
	}
}

func (s *Shell) book() bool {
	fmt.Fprint(s.out, "Enter Facility ID to book: ")
	idToken, ok := s.next()
	if !ok {
		return false
	}

	fmt.Fprint(s.out, "Enter Time Slot (e.g., 08:00-09:00): ")
	slot, ok := s.next()
	if !ok {
		return false
	}

	id, err := strconv.Atoi(idToken)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid Facility ID.")
		return true
	}

	receipt, err := s.svc.Book(id, slot)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotLoggedIn):
			fmt.Fprintln(s.out, "Please login to book a facility.")
		case errors.Is(err, repository.ErrFacilityNotFound):
			fmt.Fprintln(s.out, "Invalid Facility ID.")
		case errors.Is(err, service.ErrSlotUnavailable):
			fmt.Fprintln(s.out, "Selected slot is not available.")
		default:
			fmt.Fprintln(s.out, "Failed to book slot.")
		}
		s.logger.Debug("booking rejected", zap.Int("facility_id", id), zap.String("slot", slot), zap.Error(err))
		return true
	}

	fmt.Fprintf(s.out, "Facility %q booked for slot %s.\n", receipt.FacilityName, receipt.Slot)
	fmt.Fprintf(s.out, "Total Amount: Rs.%s\n", formatPrice(receipt.Amount))
	fmt.Fprintf(s.out, "Please pay via UPI to: %s\n", receipt.PayTo)
	s.logger.Info("slot booked", zap.Int("facility_id", id), zap.String("slot", slot))
	return true
}

func (s *Shell) release() bool {
	fmt.Fprint(s.out, "Enter Facility ID to release: ")
	idToken, ok := s.next()
	if !ok {
		return false
	}

	fmt.Fprint(s.out, "Enter Time Slot to release: ")
	slot, ok := s.next()
	if !ok {
		return false
	}

	id, err := strconv.Atoi(idToken)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid Facility ID.")
		return true
	}

	if err := s.svc.Release(id, slot); err != nil {
		fmt.Fprintln(s.out, "Invalid Facility ID.")
		s.logger.Debug("release rejected", zap.Int("facility_id", id), zap.Error(err))
		return true
	}

	fmt.Fprintf(s.out, "Slot %s of Facility ID %d has been released.\n", slot, id)
	s.logger.Info("slot released", zap.Int("facility_id", id), zap.String("slot", slot))
	return true
}

func (s *Shell) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) scanErr() error {
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// formatPrice печатает цену без хвостовых нулей: Rs.1200, а не Rs.1200.00.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
