// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package steps defines the application form flow and validates step payloads.

# Step Flow

Seven numbered steps, each with its own required field set:

	1 loan          loanAmount, loanPeriod
	2 identity      idNumber, realName
	3 profile       education, maritalStatus, address
	4 employment    employer, monthlyIncome
	5 contacts      contact1Name, contact1Phone, contact2Name, contact2Phone
	6 verification  smsCode
	7 bank          bankCardNumber

Steps may be submitted in any order; the store records whichever steps have
been written. An application is complete when all seven steps are recorded.

# Validation

	if verr := steps.Validate(req.Step, req.Data); verr != nil {
		// verr.Field names the missing field
	}

Unknown extra fields in a payload are ignored. Validation never mutates
stored state; it runs before any store access.
*/
package steps
