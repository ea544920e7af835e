package members

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Member is one record of the register.
type Member struct {
	ID        string
	CreatedAt time.Time
	IP        string
	UserAgent string

	Prefix     string // nev_elotag, e.g. "dr."
	Surname    string // nev_vezetek
	GivenName  string // nev_kereszt
	MiddleName string // nev_utonev

	BirthName        string // szuletesi_nev
	BirthCountry     string // szuletesi_orszag
	BirthPlace       string // szuletesi_telepules
	BirthDate        string // szuletesi_datum, yyyy-mm-dd
	MotherMaidenName string // anya_leanykori_nev

	PostCode string // irsz
	City     string // varos
	Street   string // utca_hazszam
	Unit     string // epulet_emelet_ajto

	Phone string // telefon
	Email string

	ConsentContact    bool
	ConsentProcessing bool
}

// columns lists the register's columns in storage and export order.
var columns = [...]string{
	"id", "created_at", "ip", "user_agent",
	"nev_elotag", "nev_vezetek", "nev_kereszt", "nev_utonev",
	"szuletesi_nev", "szuletesi_orszag", "szuletesi_telepules", "szuletesi_datum",
	"anya_leanykori_nev",
	"irsz", "varos", "utca_hazszam", "epulet_emelet_ajto",
	"telefon", "email",
	"consent_contact", "consent_processing",
}

// Columns returns the column names of the register in export order.
func Columns() []string {
	return append([]string(nil), columns[:]...)
}

// timeLayout has fixed width, so stored timestamps order lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Name returns the display name of m: prefix, surname, given name and middle
// name, separated by single spaces. Empty parts are left out.
func (m Member) Name() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{m.Prefix, m.Surname, m.GivenName, m.MiddleName} {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// record returns the values of m in column order.
func (m Member) record() []string {
	created := ""
	if !m.CreatedAt.IsZero() {
		created = m.CreatedAt.UTC().Format(timeLayout)
	}
	return []string{
		m.ID, created, m.IP, m.UserAgent,
		m.Prefix, m.Surname, m.GivenName, m.MiddleName,
		m.BirthName, m.BirthCountry, m.BirthPlace, m.BirthDate,
		m.MotherMaidenName,
		m.PostCode, m.City, m.Street, m.Unit,
		m.Phone, m.Email,
		bit(m.ConsentContact), bit(m.ConsentProcessing),
	}
}

// fromRecord is the inverse of record.
func fromRecord(rec []string) (Member, error) {
	if len(rec) != len(columns) {
		return Member{}, fmt.Errorf("member record has %d fields, want %d", len(rec), len(columns))
	}
	m := Member{
		ID:                rec[0],
		IP:                rec[2],
		UserAgent:         rec[3],
		Prefix:            rec[4],
		Surname:           rec[5],
		GivenName:         rec[6],
		MiddleName:        rec[7],
		BirthName:         rec[8],
		BirthCountry:      rec[9],
		BirthPlace:        rec[10],
		BirthDate:         rec[11],
		MotherMaidenName:  rec[12],
		PostCode:          rec[13],
		City:              rec[14],
		Street:            rec[15],
		Unit:              rec[16],
		Phone:             rec[17],
		Email:             rec[18],
		ConsentContact:    rec[19] == "1",
		ConsentProcessing: rec[20] == "1",
	}
	if rec[1] != "" {
		t, err := time.Parse(timeLayout, rec[1])
		if err != nil {
			return m, fmt.Errorf("member %s: %w", m.ID, err)
		}
		m.CreatedAt = t
	}
	return m, nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Honeypot is the form field hidden from human visitors. Submissions filling
// it in are accepted and dropped.
const Honeypot = "website"

// FromFields builds a member from submitted form fields, keyed by column
// name. Values are trimmed. A consent is given by any true value of
// strconv.ParseBool, e.g. "1" from a checkbox or "true" from JSON.
func FromFields(fields map[string]string) Member {
	v := func(key string) string {
		return strings.TrimSpace(fields[key])
	}
	return Member{
		Prefix:            v("nev_elotag"),
		Surname:           v("nev_vezetek"),
		GivenName:         v("nev_kereszt"),
		MiddleName:        v("nev_utonev"),
		BirthName:         v("szuletesi_nev"),
		BirthCountry:      v("szuletesi_orszag"),
		BirthPlace:        v("szuletesi_telepules"),
		BirthDate:         v("szuletesi_datum"),
		MotherMaidenName:  v("anya_leanykori_nev"),
		PostCode:          v("irsz"),
		City:              v("varos"),
		Street:            v("utca_hazszam"),
		Unit:              v("epulet_emelet_ajto"),
		Phone:             v("telefon"),
		Email:             v("email"),
		ConsentContact:    truthy(v("consent_contact")),
		ConsentProcessing: truthy(v("consent_processing")),
	}
}

func truthy(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

// ErrInvalid is wrapped by every *ValidationError.
var ErrInvalid = errors.New("validation error")

// ValidationError lists everything wrong with a submitted member, in the
// wording shown to the person filling in the form.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalid, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^0[1-9](\s?\d{1,2})?(\s?\d{3})\s?\d{4}$`) // 06 1 123 4567, 06-30-123-4567, ...
)

// Validate checks that both consents are given, that the mandatory fields are
// filled in and that birth date and phone number are well-formed.
func Validate(m Member) error {
	var problems []string
	if !m.ConsentContact {
		problems = append(problems, "Kapcsolattartási hozzájárulás szükséges")
	}
	if !m.ConsentProcessing {
		problems = append(problems, "Adatkezelési hozzájárulás szükséges")
	}
	required := []struct {
		column, value string
	}{
		{"nev_vezetek", m.Surname},
		{"nev_kereszt", m.GivenName},
		{"szuletesi_datum", m.BirthDate},
		{"telefon", m.Phone},
		{"email", m.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, r.column+" kötelező")
		}
	}
	if m.BirthDate != "" && !datePattern.MatchString(m.BirthDate) {
		problems = append(problems, "Dátum formátum: yyyy-mm-dd")
	}
	if phone := strings.TrimSpace(strings.ReplaceAll(m.Phone, "-", " ")); phone != "" && !phonePattern.MatchString(phone) {
		problems = append(problems, "Telefonszám formátum hibás")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
