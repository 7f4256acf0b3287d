// Package user contains the User aggregate: a customer and the contact details
// collected when an order is placed.
package user
