package condition

import "time"

// Test domain model: the conditions under test project into this
// structure, but the package itself has no dependency on it.

type Postcode struct {
	Value string
}

type Address struct {
	Line1    string
	Line2    string
	Line3    string
	Town     string
	Postcode Postcode
}

type Customer struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Address     Address
}

func firstName(expected string) Condition[Customer] {
	return Equals(
		"first name", expected,
		func(c Customer) string { return c.FirstName },
	)
}

func lastName(expected string) Condition[Customer] {
	return Equals(
		"last name", expected,
		func(c Customer) string { return c.LastName },
	)
}

func dateOfBirth(expected time.Time) Condition[Customer] {
	return Equals(
		"date of birth", expected,
		func(c Customer) time.Time { return c.DateOfBirth },
	)
}

func addressTown(expected string) Condition[Customer] {
	return Equals(
		"address town", expected,
		func(c Customer) string { return c.Address.Town },
	)
}

func line1(expected string) Condition[Address] {
	return Equals(
		"line 1", expected,
		func(a Address) string { return a.Line1 },
	)
}

func line2(expected string) Condition[Address] {
	return Equals(
		"line 2", expected,
		func(a Address) string { return a.Line2 },
	)
}

func line3(expected string) Condition[Address] {
	return Equals(
		"line 3", expected,
		func(a Address) string { return a.Line3 },
	)
}

func town(expected string) Condition[Address] {
	return Equals(
		"town", expected,
		func(a Address) string { return a.Town },
	)
}

func postcode(expected Postcode) Condition[Address] {
	return Equals(
		"postcode", expected,
		func(a Address) Postcode { return a.Postcode },
	)
}

func address(conditions ...Condition[Address]) Condition[Customer] {
	return Nestable(
		"address",
		func(c Customer) Address { return c.Address },
		conditions...,
	)
}

func customer(conditions ...Condition[Customer]) Condition[Customer] {
	return Group("customer", conditions...)
}

func johnDoe() Customer {
	return Customer{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: time.Date(1980, 12, 11, 0, 0, 0, 0, time.UTC),
		Address: Address{
			Line1:    "12 Chestnut close",
			Line2:    "",
			Line3:    "South Woodford",
			Town:     "Manchester",
			Postcode: Postcode{Value: "M15 5HT"},
		},
	}
}

func mikeBellview() Customer {
	return Customer{
		FirstName:   "Mike",
		LastName:    "Bellview",
		DateOfBirth: time.Date(1985, 4, 10, 0, 0, 0, 0, time.UTC),
		Address: Address{
			Line1:    "5 Holy street",
			Line2:    "",
			Line3:    "",
			Town:     "Glasgow",
			Postcode: Postcode{Value: "G52 4AB"},
		},
	}
}
