// Package models defines the request, response and persistence types of the items feature.
package models
