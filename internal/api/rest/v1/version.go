package v1

// BasePath is the route group every crypto endpoint is registered under
const BasePath = "/api/crypto"
