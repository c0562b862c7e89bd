// Package testdoubles provides spies and fakes for testing the lending engine,
// its broadcaster and its journal without real infrastructure.
package testdoubles
