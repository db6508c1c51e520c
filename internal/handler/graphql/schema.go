package graphql

// Schema is the GraphQL schema served at /graphql. Field names are part of
// the frontend contract and must not change.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Employee {
		id: ID!
		name: String!
		age: Int!
		class: String!
		subjects: [String!]!
		attendance: Int!
	}

	type EmployeeConnection {
		employees: [Employee!]!
		totalCount: Int!
		page: Int!
		pageSize: Int!
		hasNextPage: Boolean!
		hasPreviousPage: Boolean!
	}

	input EmployeeInput {
		name: String!
		age: Int!
		class: String!
		subjects: [String!]!
		attendance: Int!
	}

	input EmployeeUpdateInput {
		name: String
		age: Int
		class: String
		subjects: [String!]
		attendance: Int
	}

	input EmployeeFilter {
		class: String
		minAge: Int
		maxAge: Int
		minAttendance: Int
		name: String
	}

	enum SortField {
		NAME
		AGE
		CLASS
		ATTENDANCE
	}

	enum SortOrder {
		ASC
		DESC
	}

	input SortInput {
		field: SortField!
		order: SortOrder!
	}

	type AuthPayload {
		token: String!
		user: User!
	}

	type User {
		id: ID!
		username: String!
		role: Role!
	}

	enum Role {
		ADMIN
		EMPLOYEE
	}

	type Query {
		employees(
			filter: EmployeeFilter
			page: Int = 1
			pageSize: Int = 10
			sort: SortInput
		): EmployeeConnection!

		employee(id: ID!): Employee

		me: User
	}

	type Mutation {
		addEmployee(input: EmployeeInput!): Employee!

		updateEmployee(id: ID!, input: EmployeeUpdateInput!): Employee!

		login(username: String!, password: String!): AuthPayload!

		register(username: String!, password: String!, role: Role!): AuthPayload!
	}
`
