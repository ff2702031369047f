package pvec

// Version of this module, as reported by the driver.
const Version = "v0.3.0"
