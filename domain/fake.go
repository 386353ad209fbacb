package domain

import (
	"math/rand/v2"
	"strings"

	"github.com/bxcodec/faker/v4"
	"github.com/shopspring/decimal"
)

var designations = []string{
	"Software Engineer",
	"Research Analyst",
	"Relationship Manager",
	"Operations Executive",
	"Accountant",
	"HR Executive",
}

type bank struct{ name, code string }

var banks = []bank{
	{"HDFC Bank", "HDFC"},
	{"ICICI Bank", "ICIC"},
	{"State Bank of India", "SBIN"},
	{"Axis Bank", "UTIB"},
	{"Kotak Mahindra Bank", "KKBK"},
}

// GenerateEmployees creates n employees with random data and sequential IDs,
// continuing after the highest ID already in r.
func GenerateEmployees(r *Roster, n int) []Employee {
	employees := make([]Employee, 0, n)

	for range n {
		b := banks[rand.IntN(len(banks))]
		emp := Employee{
			ID:            r.NextID(),
			Name:          uniqueName(r),
			Email:         faker.Email(),
			Mobile:        faker.Phonenumber(),
			Designation:   designations[rand.IntN(len(designations))],
			BankName:      b.name,
			AccountNumber: randomDigits(12),
			IFSC:          b.code + "0" + randomDigits(6),
			MonthlySalary: decimal.NewFromInt(int64(15+rand.IntN(60)) * 1000),
		}
		r.Add(emp)
		employees = append(employees, emp)
	}

	return employees
}

func uniqueName(r *Roster) string {
	for {
		name := faker.Name()
		if _, taken := r.ByName(name); !taken {
			return name
		}
	}
}

func randomDigits(n int) string {
	var b strings.Builder
	for range n {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
