package protocol

import (
	escpos "github.com/fabienbellanger/escpos-go"
)

const qrcodeMaxDataSize = 7089

// QRCodeModel selects the QR code model (wire values 49-51).
type QRCodeModel byte

const (
	QRCodeModel1 QRCodeModel = iota + 49
	QRCodeModel2
	QRCodeMicro
)

// QRCodeCorrectionLevel selects the error correction level (wire values
// 48-51).
type QRCodeCorrectionLevel byte

const (
	QRCodeCorrectionL QRCodeCorrectionLevel = iota + 48
	QRCodeCorrectionM
	QRCodeCorrectionQ
	QRCodeCorrectionH
)

// QRCodeOption groups the parameters of a printed QR code.
type QRCodeOption struct {
	Model           QRCodeModel
	Size            byte
	CorrectionLevel QRCodeCorrectionLevel
}

// DefaultQRCodeOption returns the options used when the caller does not
// specify any.
func DefaultQRCodeOption() QRCodeOption {
	return QRCodeOption{
		Model:           QRCodeModel1,
		Size:            4,
		CorrectionLevel: QRCodeCorrectionH,
	}
}

// QRCodeModel returns the model selection command.
func (p Protocol) QRCodeModel(model QRCodeModel) escpos.Command {
	return append(gs2D.Clone(), 4, 0, symbolQRCode, 65, byte(model), 0)
}

// QRCodeSize returns the module size command. Sizes above 15 are clamped.
func (p Protocol) QRCodeSize(size byte) escpos.Command {
	if size > 15 {
		size = 15
	}
	return append(gs2D.Clone(), 3, 0, symbolQRCode, 67, size)
}

// QRCodeCorrectionLevel returns the error correction level command.
func (p Protocol) QRCodeCorrectionLevel(level QRCodeCorrectionLevel) escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolQRCode, 69, byte(level))
}

// QRCodeData returns the symbol storage command for the payload.
func (p Protocol) QRCodeData(data string) (escpos.Command, error) {
	if len(data) > qrcodeMaxDataSize {
		return nil, escpos.Inputf(
			"QR code data is too long (%d), its length should be smaller than %d",
			len(data), qrcodeMaxDataSize+1,
		)
	}
	lo, hi, err := escpos.FrameLength2(len(data), 3)
	if err != nil {
		return nil, err
	}
	cmd := append(gs2D.Clone(), lo, hi, symbolQRCode, symbolFnStore, symbolFnArg)
	return append(cmd, data...), nil
}

// QRCodePrint returns the print-symbol-data command.
func (p Protocol) QRCodePrint() escpos.Command {
	return append(gs2D.Clone(), 3, 0, symbolQRCode, symbolFnPrint, symbolFnArg)
}

// QRCode validates the payload and returns the ordered command sequence
// printing it: model, size, correction level, data, then print.
func (p Protocol) QRCode(data string, option QRCodeOption) ([]escpos.Command, error) {
	dataCmd, err := p.QRCodeData(data)
	if err != nil {
		return nil, err
	}
	return []escpos.Command{
		p.QRCodeModel(option.Model),
		p.QRCodeSize(option.Size),
		p.QRCodeCorrectionLevel(option.CorrectionLevel),
		dataCmd,
		p.QRCodePrint(),
	}, nil
}
