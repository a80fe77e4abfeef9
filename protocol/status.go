package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

// RealTimeStatusRequest is a DLE EOT status category. The response byte
// carries no category tag, so the caller must correlate each response
// with the request that produced it.
type RealTimeStatusRequest int

const (
	StatusPrinter RealTimeStatusRequest = iota
	StatusOfflineCause
	StatusErrorCause
	StatusRollPaperSensor
	StatusInkA
	StatusInkB
	StatusPeeler
	StatusInterface
	StatusDMD
)

var statusRequestPairs = map[RealTimeStatusRequest][2]byte{
	StatusPrinter:         {1, 0},
	StatusOfflineCause:    {2, 0},
	StatusErrorCause:      {3, 0},
	StatusRollPaperSensor: {4, 0},
	StatusInkA:            {7, 1},
	StatusInkB:            {7, 2},
	StatusPeeler:          {8, 3},
	StatusInterface:       {18, 1},
	StatusDMD:             {18, 2},
}

func (r RealTimeStatusRequest) String() string {
	switch r {
	case StatusPrinter:
		return "printer"
	case StatusOfflineCause:
		return "offline cause"
	case StatusErrorCause:
		return "error cause"
	case StatusRollPaperSensor:
		return "roll paper sensor"
	case StatusInkA:
		return "ink A"
	case StatusInkB:
		return "ink B"
	case StatusPeeler:
		return "peeler"
	case StatusInterface:
		return "interface"
	case StatusDMD:
		return "DM-D"
	default:
		return "unknown"
	}
}

// RealTimeStatus returns the DLE EOT request command for a category.
func (p Protocol) RealTimeStatus(request RealTimeStatusRequest) (escpos.Command, error) {
	pair, ok := statusRequestPairs[request]
	if !ok {
		return nil, escpos.Inputf("unknown real-time status request: %d", request)
	}
	return escpos.Command{DLE, EOT, pair[0], pair[1]}, nil
}

// StatusFlag is a named boolean read out of a status response byte.
type StatusFlag int

const (
	FlagDrawerKickOutConnectorPin3Low StatusFlag = iota
	FlagOnline
	FlagWaitingForOnlineRecovery
	FlagPaperFeedButtonPressed

	FlagCoverClosed
	FlagPaperFedByPaperFeedButton
	FlagPrintingStopsDueToPaperEnd
	FlagErrorOccurred

	FlagRecoverableErrorOccurred
	FlagAutocutterErrorOccurred
	FlagUnrecoverableErrorOccurred
	FlagAutoRecoverableErrorOccurred

	FlagRollPaperNearEndSensorPaperAdequate
	FlagRollPaperEndSensorPaperPresent

	FlagInkNearEndDetected
	FlagInkEndDetected
	FlagInkCartridgeDetected
	FlagCleaningPerformed

	FlagWaitingForLabelToBeRemoved
	FlagPaperPresentInLabelPeelingDetector

	FlagPrintingMultipleInterfacesEnabled

	FlagDMDTransmissionReady
)

// Every valid status byte matches 0xx1xx10 (LSB first: bit0=0, bit1=1,
// bit4=1, bit7=0).
const (
	statusTemplateMask  = 0b10010011
	statusTemplateValue = 0b00010010
)

func bit(b byte, n uint) bool {
	return b&(1<<n) != 0
}

// ParseStatus decodes a status response byte against the category of the
// request that produced it. The byte is rejected before any flag
// extraction if it does not match the fixed bit template.
func ParseStatus(request RealTimeStatusRequest, response byte) (map[StatusFlag]bool, error) {
	if response&statusTemplateMask != statusTemplateValue {
		return nil, escpos.Protocolf("invalid response pattern: %08b (0xx1xx10 expected)", response)
	}

	flags := make(map[StatusFlag]bool)
	switch request {
	case StatusPrinter:
		flags[FlagDrawerKickOutConnectorPin3Low] = !bit(response, 2)
		flags[FlagOnline] = !bit(response, 3)
		flags[FlagWaitingForOnlineRecovery] = bit(response, 5)
		flags[FlagPaperFeedButtonPressed] = bit(response, 6)
	case StatusOfflineCause:
		flags[FlagCoverClosed] = !bit(response, 2)
		flags[FlagPaperFedByPaperFeedButton] = bit(response, 3)
		flags[FlagPrintingStopsDueToPaperEnd] = bit(response, 5)
		flags[FlagErrorOccurred] = bit(response, 6)
	case StatusErrorCause:
		flags[FlagRecoverableErrorOccurred] = bit(response, 2)
		flags[FlagAutocutterErrorOccurred] = bit(response, 3)
		flags[FlagUnrecoverableErrorOccurred] = bit(response, 5)
		flags[FlagAutoRecoverableErrorOccurred] = bit(response, 6)
	case StatusRollPaperSensor:
		flags[FlagRollPaperNearEndSensorPaperAdequate] = !bit(response, 2) && !bit(response, 3)
		flags[FlagRollPaperEndSensorPaperPresent] = !bit(response, 5) && !bit(response, 6)
	case StatusInkA:
		flags[FlagInkNearEndDetected] = bit(response, 2)
		flags[FlagInkEndDetected] = bit(response, 3)
		flags[FlagInkCartridgeDetected] = !bit(response, 5)
		flags[FlagCleaningPerformed] = bit(response, 6)
	case StatusInkB:
		flags[FlagInkNearEndDetected] = bit(response, 2)
		flags[FlagInkEndDetected] = bit(response, 3)
		flags[FlagInkCartridgeDetected] = !bit(response, 5)
	case StatusPeeler:
		flags[FlagWaitingForLabelToBeRemoved] = bit(response, 2)
		flags[FlagPaperPresentInLabelPeelingDetector] = !bit(response, 5)
	case StatusInterface:
		flags[FlagPrintingMultipleInterfacesEnabled] = bit(response, 2)
	case StatusDMD:
		flags[FlagDMDTransmissionReady] = !bit(response, 2)
	default:
		return nil, escpos.Inputf("unknown real-time status request: %d", request)
	}

	return flags, nil
}
