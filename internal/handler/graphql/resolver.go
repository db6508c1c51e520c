package graphql

import (
	"context"
	"errors"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/empdash/empdash-backend-go/internal/domain/employee"
	"github.com/empdash/empdash-backend-go/internal/domain/user"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

// Resolver is the access-controlled query and mutation layer: it binds the
// caller identity from the request context to the employee and auth services,
// enforcing role checks before any store access.
type Resolver struct {
	authService        auth.AuthService
	employeeService    employee.Service
	employeeRepository employee.EmployeeRepository
}

func NewResolver(authService auth.AuthService, employeeService employee.Service, employeeRepository employee.EmployeeRepository) *Resolver {
	return &Resolver{
		authService:        authService,
		employeeService:    employeeService,
		employeeRepository: employeeRepository,
	}
}

// NewSchema parses the schema against the resolver. Panics on a schema or
// resolver mismatch, which is a programming error.
func NewSchema(resolver *Resolver) *graphqlgo.Schema {
	return graphqlgo.MustParseSchema(Schema, resolver)
}

func requireAuth(ctx context.Context) (auth.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, wrapError(auth.ErrAuthenticationRequired)
	}
	return identity, nil
}

func requireAdmin(ctx context.Context) (auth.Identity, error) {
	identity, err := requireAuth(ctx)
	if err != nil {
		return auth.Identity{}, err
	}
	if identity.Role != user.RoleAdmin {
		return auth.Identity{}, wrapError(user.ErrAdminAccessRequired)
	}
	return identity, nil
}

type employeesArgs struct {
	Filter   *employeeFilterInput
	Page     int32
	PageSize int32
	Sort     *sortInput
}

func (r *Resolver) Employees(ctx context.Context, args employeesArgs) (*employeeConnectionResolver, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	page, err := r.employeeService.List(ctx, employee.ListEmployeesRequest{
		Filter:   args.Filter.toFilter(),
		Sort:     args.Sort.toSort(),
		Page:     int(args.Page),
		PageSize: int(args.PageSize),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &employeeConnectionResolver{page: page}, nil
}

// Employee resolves a single record, going through the per-request loader
// when one is installed. Unknown ids resolve to null, not an error.
func (r *Resolver) Employee(ctx context.Context, args struct{ ID graphqlgo.ID }) (*employeeResolver, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	if loader, ok := LoaderFromContext(ctx); ok {
		emp, err := loader.Load(ctx, string(args.ID))
		if err != nil {
			return nil, wrapError(err)
		}
		if emp == nil {
			return nil, nil
		}
		return &employeeResolver{emp: *emp}, nil
	}

	emp, err := r.employeeService.Get(ctx, string(args.ID))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return &employeeResolver{emp: emp}, nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, nil
	}
	return &userResolver{u: user.PublicUser{
		ID:       identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
	}}, nil
}

func (r *Resolver) AddEmployee(ctx context.Context, args struct{ Input employeeInput }) (*employeeResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	created, err := r.employeeService.Create(ctx, args.Input.toRequest())
	if err != nil {
		return nil, wrapError(err)
	}
	return &employeeResolver{emp: created}, nil
}

func (r *Resolver) UpdateEmployee(ctx context.Context, args struct {
	ID    graphqlgo.ID
	Input employeeUpdateInput
}) (*employeeResolver, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	updated, err := r.employeeService.Update(ctx, string(args.ID), args.Input.toRequest())
	if err != nil {
		return nil, wrapError(err)
	}

	if loader, ok := LoaderFromContext(ctx); ok {
		loader.Clear(string(args.ID))
	}
	return &employeeResolver{emp: updated}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Username, Password string }) (*authPayloadResolver, error) {
	req := auth.LoginRequest{Username: args.Username, Password: args.Password}
	if err := req.Validate(); err != nil {
		return nil, wrapError(err)
	}

	payload, err := r.authService.Login(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return &authPayloadResolver{payload: payload}, nil
}

func (r *Resolver) Register(ctx context.Context, args struct{ Username, Password, Role string }) (*authPayloadResolver, error) {
	req := auth.RegisterRequest{
		Username: args.Username,
		Password: args.Password,
		Role:     user.Role(args.Role),
	}
	if err := req.Validate(); err != nil {
		return nil, wrapError(err)
	}

	payload, err := r.authService.Register(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return &authPayloadResolver{payload: payload}, nil
}

type employeeResolver struct {
	emp employee.Employee
}

func (r *employeeResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.emp.ID) }

func (r *employeeResolver) Name() string { return r.emp.Name }

func (r *employeeResolver) Age() int32 { return int32(r.emp.Age) }

func (r *employeeResolver) Class() string { return r.emp.Class }

func (r *employeeResolver) Subjects() []string {
	if r.emp.Subjects == nil {
		return []string{}
	}
	return r.emp.Subjects
}

func (r *employeeResolver) Attendance() int32 { return int32(r.emp.Attendance) }

type employeeConnectionResolver struct {
	page employee.Page
}

func (r *employeeConnectionResolver) Employees() []*employeeResolver {
	resolvers := make([]*employeeResolver, len(r.page.Employees))
	for i, emp := range r.page.Employees {
		resolvers[i] = &employeeResolver{emp: emp}
	}
	return resolvers
}

func (r *employeeConnectionResolver) TotalCount() int32 { return int32(r.page.TotalCount) }

func (r *employeeConnectionResolver) Page() int32 { return int32(r.page.Page) }

func (r *employeeConnectionResolver) PageSize() int32 { return int32(r.page.PageSize) }

func (r *employeeConnectionResolver) HasNextPage() bool { return r.page.HasNextPage }

func (r *employeeConnectionResolver) HasPreviousPage() bool {
	return r.page.HasPreviousPage
}

type userResolver struct {
	u user.PublicUser
}

func (r *userResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.u.ID) }

func (r *userResolver) Username() string { return r.u.Username }

func (r *userResolver) Role() string { return string(r.u.Role) }

type authPayloadResolver struct {
	payload auth.AuthPayload
}

func (r *authPayloadResolver) Token() string { return r.payload.Token }
func (r *authPayloadResolver) User() *userResolver {
	return &userResolver{u: r.payload.User}
}
