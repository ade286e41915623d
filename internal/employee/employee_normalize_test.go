package employee_test

import (
	"testing"

	"sicservitium/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("all BR separators collapse to the same ISO date", func(t *testing.T) {
		assert.Equal(t, "2024-12-25", employee.NormalizeDate("25/12/2024"))
		assert.Equal(t, "2024-12-25", employee.NormalizeDate("25-12-2024"))
		assert.Equal(t, "2024-12-25", employee.NormalizeDate("25.12.2024"))
	})

	t.Run("ISO passes through and time suffixes are dropped", func(t *testing.T) {
		assert.Equal(t, "2024-12-25", employee.NormalizeDate("2024-12-25"))
		assert.Equal(t, "2024-12-25", employee.NormalizeDate("2024-12-25T10:30:00"))
	})

	t.Run("spreadsheet date serial", func(t *testing.T) {
		// 45658 is 2025-01-01 in the 1900 epoch.
		assert.Equal(t, "2025-01-01", employee.NormalizeDate("45658"))
	})

	t.Run("bare year is not a serial", func(t *testing.T) {
		assert.Equal(t, "", employee.NormalizeDate("1985"))
	})

	t.Run("garbage maps to empty", func(t *testing.T) {
		assert.Equal(t, "", employee.NormalizeDate(""))
		assert.Equal(t, "", employee.NormalizeDate("not a date"))
		assert.Equal(t, "", employee.NormalizeDate("25/12/24"))
	})

	t.Run("round trips through the BR display form", func(t *testing.T) {
		iso := employee.NormalizeDate("03/07/1991")
		assert.Equal(t, "1991-07-03", iso)
		assert.Equal(t, "03/07/1991", employee.FormatDateBR(iso))
	})
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "25/12/2024", employee.FormatDateBR("2024-12-25"))
	assert.Equal(t, "25/12/2024", employee.FormatDateBR("25-12-2024"))
	assert.Equal(t, "", employee.FormatDateBR(""))
	assert.Equal(t, "sem data", employee.FormatDateBR("sem data"))
}

func TestNormalizePhone(t *testing.T) {
	t.Run("eleven digits get the full mask", func(t *testing.T) {
		assert.Equal(t, "(81) 99876-5432", employee.NormalizePhone("81998765432"))
	})

	t.Run("punctuation is stripped before formatting", func(t *testing.T) {
		assert.Equal(t, "(81) 99876-5432", employee.NormalizePhone("(81) 9 9876-5432"))
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		once := employee.NormalizePhone("81998765432")
		assert.Equal(t, once, employee.NormalizePhone(once))
	})

	t.Run("short inputs keep a partial mask", func(t *testing.T) {
		assert.Equal(t, "81", employee.NormalizePhone("81"))
		assert.Equal(t, "(81) 9987", employee.NormalizePhone("819987"))
	})

	t.Run("no digits maps to empty", func(t *testing.T) {
		assert.Equal(t, "", employee.NormalizePhone("abc"))
		assert.Equal(t, "", employee.NormalizePhone(""))
	})
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", employee.NormalizeCPF("123.456.789-01"))
	assert.Equal(t, "", employee.NormalizeCPF("1234567890"))
	assert.Equal(t, "", employee.NormalizeCPF("123456789012"))
	assert.Equal(t, "", employee.NormalizeCPF(""))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", employee.FormatCPF("12345678901"))
	assert.Equal(t, "123.456", employee.FormatCPF("123456"))
	assert.Equal(t, "", employee.FormatCPF(""))
}
