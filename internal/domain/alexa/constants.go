package alexa

type Version string

const (
	V2 Version = "2"
	V3 Version = "3"
)

// Legacy (payload version 2) namespaces and names.
const (
	NamespaceV2Discovery = "Alexa.ConnectedHome.Discovery"
	NamespaceV2Control   = "Alexa.ConnectedHome.Control"

	NameDiscoverAppliancesRequest  = "DiscoverAppliancesRequest"
	NameDiscoverAppliancesResponse = "DiscoverAppliancesResponse"
	NameTurnOnRequest              = "TurnOnRequest"
	NameTurnOffRequest             = "TurnOffRequest"
	NameTurnOnConfirmation         = "TurnOnConfirmation"
	NameTurnOffConfirmation        = "TurnOffConfirmation"
)

// Payload version 3 namespaces and names.
const (
	NamespaceAlexa           = "Alexa"
	NamespaceDiscovery       = "Alexa.Discovery"
	NamespacePowerController = "Alexa.PowerController"
	NamespaceAuthorization   = "Alexa.Authorization"
	NamespaceEndpointHealth  = "Alexa.EndpointHealth"

	NameDiscover            = "Discover"
	NameDiscoverResponse    = "Discover.Response"
	NameTurnOn              = "TurnOn"
	NameTurnOff             = "TurnOff"
	NameResponse            = "Response"
	NameErrorResponse       = "ErrorResponse"
	NameAcceptGrant         = "AcceptGrant"
	NameAcceptGrantResponse = "AcceptGrant.Response"
)

const (
	ManufacturerName = "Intuso"
	ModelName        = "switch"
	ApplianceVersion = "1.0"
	DisplayCategory  = "SWITCH"

	CapabilityTypeInterface = "AlexaInterface"
	InterfaceVersion        = "3"

	PropertyPowerState   = "powerState"
	PropertyConnectivity = "connectivity"

	// Self-reported state, not read back from the backend.
	UncertaintyInMilliseconds = 500

	ScopeBearerToken = "BearerToken"
)

// ErrorType is the payload type of a v3 Alexa.ErrorResponse.
type ErrorType string

const (
	ErrorInvalidDirective               ErrorType = "INVALID_DIRECTIVE"
	ErrorInvalidAuthorizationCredential ErrorType = "INVALID_AUTHORIZATION_CREDENTIAL"
	ErrorNoSuchEndpoint                 ErrorType = "NO_SUCH_ENDPOINT"
	ErrorEndpointUnreachable            ErrorType = "ENDPOINT_UNREACHABLE"
	ErrorInternal                       ErrorType = "INTERNAL_ERROR"
)

// V2ErrorName is the header name of a legacy error response.
type V2ErrorName string

const (
	V2ErrorUnsupportedOperation          V2ErrorName = "UnsupportedOperationError"
	V2ErrorUnexpectedInformationReceived V2ErrorName = "UnexpectedInformationReceivedError"
	V2ErrorInvalidAccessToken            V2ErrorName = "InvalidAccessTokenError"
	V2ErrorNoSuchTarget                  V2ErrorName = "NoSuchTargetError"
	V2ErrorTargetOffline                 V2ErrorName = "TargetOfflineError"
	V2ErrorDriverInternal                V2ErrorName = "DriverInternalError"
)
