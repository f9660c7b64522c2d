package main

const Version = "v0.1.0"

const (
	DefaultPeriodsPerYear = "252"
	DefaultRiskFreeRate   = "0"
	DefaultDataFormat     = "auto"
	DefaultDelimiter      = ","
)
