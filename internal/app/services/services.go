package services

// Services defined in this package:
// - Aggregator: pure SPI/CPI computation over course rows and prior history
// - CalculatorService: session-scoped course list and calculate operations
// - GradeService: grade table enumeration and lookup
