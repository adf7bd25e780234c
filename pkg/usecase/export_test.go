package usecase

// DisambiguateHeaders is exported for testing
var DisambiguateHeaders = disambiguateHeaders

// ParseScore is exported for testing
var ParseScore = parseScore
