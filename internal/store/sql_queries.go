// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/customer-service/models"
)

// customerColumns is the canonical column order used by every SELECT and
// RETURNING clause. Scan destinations must match this order.
var customerColumns = []string{"id", "first_name", "last_name", "email", "phone_number"}

// buildInsertCustomerQuery builds the INSERT for a new customer record.
// The RETURNING clause hands back the database-assigned id together with
// the stored fields, so the caller receives the canonical representation.
func buildInsertCustomerQuery(customer models.Customer, ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Insert(customer.TableName()).
		Columns("first_name", "last_name", "email", "phone_number").
		Values(customer.FirstName, customer.LastName, customer.Email, customer.PhoneNumber).
		Suffix("RETURNING id, first_name, last_name, email, phone_number").
		PlaceholderFormat(ph).
		ToSql()
}

// buildSelectCustomerQuery builds the single-record lookup by id.
func buildSelectCustomerQuery(id int64, ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(customerColumns...).
		From(models.Customer{}.TableName()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpdateCustomerQuery builds the full-replace UPDATE for the record
// with the given id. Every mutable column is overwritten; the id itself
// never changes.
func buildUpdateCustomerQuery(id int64, customer models.Customer, ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Update(customer.TableName()).
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("email", customer.Email).
		Set("phone_number", customer.PhoneNumber).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildDeleteCustomerQuery builds the DELETE for the record with the given id.
func buildDeleteCustomerQuery(id int64, ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Delete(models.Customer{}.TableName()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildListCustomersQuery builds the list query with an optional exact-match
// filter. At most one filter field applies: email wins over last_name when
// both are set. Results are ordered by id for stable pagination-free output.
func buildListCustomersQuery(filter models.CustomerFilter, ph sq.PlaceholderFormat) (string, []any, error) {
	query := sq.Select(customerColumns...).
		From(models.Customer{}.TableName()).
		OrderBy("id")

	switch {
	case filter.Email != "":
		query = query.Where(sq.Eq{"email": filter.Email})
	case filter.LastName != "":
		query = query.Where(sq.Eq{"last_name": filter.LastName})
	}

	return query.PlaceholderFormat(ph).ToSql()
}
