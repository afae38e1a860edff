package appointments

import (
	"context"
	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/app/services/core/doctors"
	"hospicare-service/internal/app/services/shared/paymentgateway"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	DoctorResolver        doctors.DoctorResolver
	PaymentGateway        paymentgateway.PaymentGatewayService
	SignatureVerifier     paymentgateway.SignatureVerifier
	VerificationLimiter   VerificationLimiter
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	doctorResolver doctors.DoctorResolver,
	paymentGateway paymentgateway.PaymentGatewayService,
	signatureVerifier paymentgateway.SignatureVerifier,
	verificationLimiter VerificationLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorResolver:        doctorResolver,
		PaymentGateway:        paymentGateway,
		SignatureVerifier:     signatureVerifier,
		VerificationLimiter:   verificationLimiter,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// resolveDoctor runs one doctor lookup and maps the tagged outcome onto the
// error taxonomy shared by both call sites.
func (uc *appointmentUsecase) resolveDoctor(ctx context.Context, firstName, lastName, department string) (*models.User, error) {
	resolution, err := uc.DoctorResolver.Resolve(ctx, firstName, lastName, department)
	if err != nil {
		return nil, err
	}
	switch resolution.Outcome {
	case doctors.ResolutionFound:
		return resolution.Doctor, nil
	case doctors.ResolutionConflict:
		return nil, exceptions.ErrDoctorConflict(nil)
	default:
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
}

func (uc *appointmentUsecase) CreateBooking(ctx context.Context, request *requests.BookAppointment) (*responses.CreateBookingResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.resolveDoctor(ctx, request.DoctorFirstName, request.DoctorLastName, request.Department)
	if err != nil {
		return nil, err
	}

	fee, ok := models.FeeFor(request.Department)
	if !ok {
		return nil, exceptions.ErrUnknownDepartment(nil)
	}

	order, err := uc.PaymentGateway.CreateOrder(ctx, fee, uc.InternalConfig.PaymentGateway.Currency)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateBooking payment order issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
		zap.String(constvars.LoggingDepartmentKey, request.Department),
		zap.Int(constvars.LoggingAmountKey, order.Amount),
	)

	return &responses.CreateBookingResponse{
		Order: order,
		KeyID: uc.PaymentGateway.KeyID(),
	}, nil
}

func (uc *appointmentUsecase) VerifyPayment(ctx context.Context, request *requests.PaymentVerification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if uc.VerificationLimiter != nil {
		decision, err := uc.VerificationLimiter.Allow(ctx, request.RazorpayOrderID)
		if err != nil {
			return err
		}
		if !decision.Allowed {
			return exceptions.ErrTooManyVerificationAttempts(nil)
		}
	}

	if !uc.SignatureVerifier.Verify(request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
		uc.Log.Warn("appointmentUsecase.VerifyPayment signature rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
			zap.String(constvars.LoggingPaymentIDKey, request.RazorpayPaymentID),
		)
		return exceptions.ErrPaymentVerificationFailed(nil)
	}

	uc.Log.Info("appointmentUsecase.VerifyPayment signature accepted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
	)
	return nil
}

// ConfirmAppointment is the only path that persists an appointment. The
// doctor is resolved again because an arbitrary client-side payment delay
// separates booking from confirmation, and the proof is verified again so a
// record can never be created from an unverified proof.
func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, request *requests.ConfirmAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctor, err := uc.resolveDoctor(ctx, request.DoctorFirstName, request.DoctorLastName, request.Department)
	if err != nil {
		return nil, err
	}

	if !uc.SignatureVerifier.Verify(request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
		uc.Log.Warn("appointmentUsecase.ConfirmAppointment signature rejected, refusing to persist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
		)
		return nil, exceptions.ErrPaymentVerificationFailed(nil)
	}

	appointment := &models.Appointment{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		Phone:           request.Phone,
		NIC:             request.NIC,
		DOB:             request.DOB,
		Gender:          request.Gender,
		AppointmentDate: request.AppointmentDate,
		Department:      request.Department,
		Doctor: models.DoctorSnapshot{
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
		},
		DoctorID:          doctor.ID,
		HasVisited:        request.HasVisited,
		Address:           request.Address,
		Status:            models.AppointmentStatusPending,
		PaymentStatus:     models.PaymentStatusPaid,
		RazorpayPaymentID: request.RazorpayPaymentID,
		RazorpayOrderID:   request.RazorpayOrderID,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ConfirmAppointment appointment persisted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error) {
	filter := buildAppointmentFilter(query)
	return uc.AppointmentRepository.FindByFilter(ctx, filter)
}

// UpdateAppointmentStatus replaces only the status field. Repeating the same
// transition is a no-op with the same final state.
func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	matched, err := uc.AppointmentRepository.UpdateStatusByID(ctx, appointmentID, status)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	matched, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !matched {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}
