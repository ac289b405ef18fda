package application

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"distributrice/internal/vending/domain"
)

// ErrUnknownOperation signale un argument qui n'est ni une recharge ni un breuvage
var ErrUnknownOperation = errors.New("unknown operation")

// OpKind type d'opération appliquée à la machine
type OpKind int

const (
	OpDispense OpKind = iota
	OpRefill
)

func (k OpKind) String() string {
	switch k {
	case OpDispense:
		return "dispense"
	case OpRefill:
		return "refill"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation une opération à appliquer; Beverage n'a de sens que pour OpDispense
type Operation struct {
	Kind     OpKind
	Beverage domain.Beverage
}

// ParseOperation accepte "refill" / "recharger", "dispense:<breuvage>" /
// "ejecter:<breuvage>" ou un nom de breuvage seul (éjection).
func ParseOperation(arg string) (Operation, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	switch s {
	case "refill", "recharger":
		return Operation{Kind: OpRefill}, nil
	}

	name := s
	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		if prefix != "dispense" && prefix != "ejecter" {
			return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, arg)
		}
		name = rest
	}

	b, err := domain.ParseBeverage(name)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: %q: %v", ErrUnknownOperation, arg, err)
	}
	return Operation{Kind: OpDispense, Beverage: b}, nil
}

// Summary bilan d'un Run
type Summary struct {
	Applied int
	Failed  int
}

// Operator applique des opérations à une machine en journalisant chaque transition.
// Comme la machine, il n'est pas sûr pour un usage concurrent.
type Operator struct {
	machine *domain.VendingMachine
	log     *zap.Logger
}

// NewOperator crée un Operator; un logger nil est remplacé par zap.NewNop
func NewOperator(machine *domain.VendingMachine, log *zap.Logger) *Operator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Operator{machine: machine, log: log}
}

// Apply applique une opération. L'erreur du domaine est retournée telle quelle.
func (o *Operator) Apply(op Operation) error {
	switch op.Kind {
	case OpRefill:
		o.machine.Refill()
		o.log.Info("machine refilled", zap.Int("total", o.machine.TotalQuantity()))
		return nil
	case OpDispense:
		if err := o.machine.Dispense(op.Beverage); err != nil {
			o.log.Warn("dispense refused",
				zap.Stringer("beverage", op.Beverage),
				zap.Error(err),
			)
			return err
		}
		o.log.Info("beverage dispensed",
			zap.Stringer("beverage", op.Beverage),
			zap.Int("quantity", o.machine.Quantity(op.Beverage)),
			zap.Int("total", o.machine.TotalQuantity()),
		)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op.Kind)
	}
}

// Run analyse tous les arguments avant de toucher la machine, puis les applique dans l'ordre.
// Une éjection refusée est comptée dans Summary.Failed sans interrompre la suite.
func (o *Operator) Run(args []string) (Summary, error) {
	ops := make([]Operation, 0, len(args))
	for _, arg := range args {
		op, err := ParseOperation(arg)
		if err != nil {
			return Summary{}, err
		}
		ops = append(ops, op)
	}

	var sum Summary
	for _, op := range ops {
		if err := o.Apply(op); err != nil {
			if errors.Is(err, domain.ErrInvalidOperation) {
				sum.Failed++
				continue
			}
			return sum, err
		}
		sum.Applied++
	}
	return sum, nil
}

// Report journalise l'état courant de la machine
func (o *Operator) Report() {
	fields := make([]zap.Field, 0, 8)
	for _, b := range domain.Beverages() {
		fields = append(fields, zap.Int(b.String(), o.machine.Quantity(b)))
	}
	fields = append(fields,
		zap.Int("total", o.machine.TotalQuantity()),
		zap.Bool("empty", o.machine.IsEmpty()),
		zap.Bool("full", o.machine.IsFull()),
	)
	if loc, ok := o.machine.Location(); ok {
		fields = append(fields, zap.String("location", loc))
	}
	o.log.Info("stock report", fields...)
}
