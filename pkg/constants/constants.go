package constants

const SERVICE_PORT = 8080

const HEALTH_CHECK_URL = "/health"
const STATS_CHECK_URL = "/stats"
const ENCODE_URL = "/encode"
const DECODE_URL = "/decode"
const NEIGHBORS_URL = "/neighbors"
