package marina

// USD is a helper for test to create dollars from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euros from const
func EUR(v float64) Money { return M(v, "EUR") }
