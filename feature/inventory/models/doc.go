// Package models defines the records that flow through the inventory report:
// raw catalog Items, checkout Status records and the projected report Row.
package models
