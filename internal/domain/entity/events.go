package entity

import "strings"

// Outbound realtime event names. The websocket transport writes these
// verbatim as the frame's event field.
const (
	EventConnected = "CONNECTED"

	EventGetAllParameters          = "GET_ALL_PARAMETERS"
	EventGetAllSubDevices          = "GET_ALL_SUB_DEVICES"
	EventGetAllSubDeviceParameters = "GET_ALL_SUB_DEVICE_PARAMETERS"
	EventGetAllSettings            = "GET_ALL_SETTINGS"
	EventGetAllSystemParameters    = "GET_ALL_SYSTEM_PARAMETERS"

	EventDeviceParamUpdated    = "DEVICE_PARAM_UPDATED"
	EventSubDeviceParamUpdated = "SUB_DEVICE_PARAM_UPDATED"

	EventUserUpdated      = "USER_UPDATED"
	EventDeviceCreated    = "DEVICE_CREATED"
	EventDeviceUpdated    = "DEVICE_UPDATED"
	EventDeviceDeleted    = "DEVICE_DELETED"
	EventSubDeviceUpdated = "SUB_DEVICE_UPDATED"
	EventGrantCreated     = "GRANT_CREATED"
	EventGrantDeleted     = "GRANT_DELETED"

	EventLogCreated = "LOG_CREATED"
)

// ErrorEventName builds the per-event error name published to the
// originating connection when an inbound event is rejected, e.g.
// "parameter-update" becomes "ERROR_PARAMETER_UPDATE".
func ErrorEventName(inbound string) string {
	return "ERROR_" + strings.ToUpper(strings.ReplaceAll(inbound, "-", "_"))
}
