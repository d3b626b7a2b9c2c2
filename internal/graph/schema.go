package graph

import "github.com/graphql-go/graphql"

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"token":    &graphql.Field{Type: graphql.String},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"age":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"class":      &graphql.Field{Type: graphql.String},
		"subjects":   &graphql.Field{Type: graphql.NewList(graphql.String)},
		"attendance": &graphql.Field{Type: graphql.Float},
		"createdAt":  &graphql.Field{Type: graphql.String},
		"updatedAt":  &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the executable schema with r's resolvers.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
			"employees": &graphql.Field{
				Type: graphql.NewList(employeeType),
				Args: graphql.FieldConfigArgument{
					"page":   &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"sortBy": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: "name"},
				},
				Resolve: r.employees,
			},
			"employee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.employee,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"registerUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"role":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.registerUser,
			},
			"loginUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.loginUser,
			},
			"addEmployee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"age":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"class":      &graphql.ArgumentConfig{Type: graphql.String},
					"subjects":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"attendance": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: r.addEmployee,
			},
			"updateEmployee": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":       &graphql.ArgumentConfig{Type: graphql.String},
					"age":        &graphql.ArgumentConfig{Type: graphql.Int},
					"class":      &graphql.ArgumentConfig{Type: graphql.String},
					"subjects":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"attendance": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: r.updateEmployee,
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteEmployee,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
